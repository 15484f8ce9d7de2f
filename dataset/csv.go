package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rushteam/lenskit/core"
)

// MovieLens 格式 CSV 摄取。
//
// movies.csv:  movieId,title,genres   （genres 以 '|' 分隔）
// ratings.csv: userId,movieId,rating,timestamp
//
// 解析策略是尽力而为：字段数不足或数值解析失败的行直接丢弃，
// 不中断整个批次（与源数据集的宽松格式匹配）。
// 哨兵类型 "(no genres listed)" 原样保留在记录中，由下游聚合排除。

// LoadCSV 从 movies/ratings 两个 CSV 文件构建内存数据集。
func LoadCSV(moviesPath, ratingsPath string) (*Memory, error) {
	mf, err := os.Open(moviesPath)
	if err != nil {
		return nil, fmt.Errorf("open movies: %w", err)
	}
	defer mf.Close()

	rf, err := os.Open(ratingsPath)
	if err != nil {
		return nil, fmt.Errorf("open ratings: %w", err)
	}
	defer rf.Close()

	movies, err := ParseMovies(mf)
	if err != nil {
		return nil, fmt.Errorf("parse movies: %w", err)
	}
	ratings, err := ParseRatings(rf)
	if err != nil {
		return nil, fmt.Errorf("parse ratings: %w", err)
	}
	return NewMemory(movies, ratings), nil
}

// ParseMovies 解析 movies.csv 内容（首行为表头）。
func ParseMovies(r io.Reader) ([]core.MovieRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // 逐行校验，坏行跳过而不是整体失败

	// 跳过表头
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var movies []core.MovieRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) < 3 {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
		if err != nil {
			continue
		}
		movies = append(movies, core.MovieRecord{
			ID:     id,
			Title:  row[1],
			Genres: strings.Split(row[2], "|"),
		})
	}
	return movies, nil
}

// ParseRatings 解析 ratings.csv 内容（首行为表头）。
func ParseRatings(r io.Reader) ([]core.RatingRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var ratings []core.RatingRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) < 4 {
			continue
		}
		userID, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
		if err != nil {
			continue
		}
		movieID, err := strconv.ParseInt(strings.TrimSpace(row[1]), 10, 64)
		if err != nil {
			continue
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			continue
		}
		ts, err := strconv.ParseInt(strings.TrimSpace(row[3]), 10, 64)
		if err != nil {
			continue
		}
		ratings = append(ratings, core.RatingRecord{
			UserID:    userID,
			MovieID:   movieID,
			Rating:    rating,
			Timestamp: ts,
		})
	}
	return ratings, nil
}
