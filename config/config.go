package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 是分析服务的配置结构（YAML）。
//
// 示例：
//
//	dataset:
//	  movies: ./data/movies.csv
//	  ratings: ./data/ratings.csv
//	store:
//	  type: redis
//	  addr: 127.0.0.1:6379
//	  db: 0
//	analytics:
//	  options:
//	    clusters: 5
//	    max_iterations: 300
//	    seed: 42
//	    sample_size: 5
//	    cache_ttl: 600
//	    filter: "rating.rating >= 4.0"
type Config struct {
	Dataset struct {
		Movies  string `yaml:"movies"`
		Ratings string `yaml:"ratings"`
	} `yaml:"dataset"`

	Store struct {
		Type string `yaml:"type"` // memory / redis
		Addr string `yaml:"addr"`
		DB   int    `yaml:"db"`
	} `yaml:"store"`

	Analytics struct {
		// Options 是松散的分析参数表，用 conv.ConfigGet 系列取值，
		// 缺省项在各组件内解析默认值
		Options map[string]any `yaml:"options"`
	} `yaml:"analytics"`
}

// LoadFromYAML 从 YAML 文件加载配置。
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &cfg, nil
}
