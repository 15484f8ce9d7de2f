package service

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/rushteam/lenskit/cluster"
	"github.com/rushteam/lenskit/core"
	"github.com/rushteam/lenskit/dataset"
	"github.com/rushteam/lenskit/stats"
	"github.com/rushteam/lenskit/store"
)

// countingDataset 统计底层数据集被访问的次数，用于验证缓存命中
type countingDataset struct {
	inner *dataset.Memory
	calls atomic.Int64
}

func (c *countingDataset) Name() string { return c.inner.Name() }

func (c *countingDataset) Movies(ctx context.Context) ([]core.MovieRecord, error) {
	c.calls.Add(1)
	return c.inner.Movies(ctx)
}

func (c *countingDataset) Movie(ctx context.Context, id int64) (core.MovieRecord, error) {
	c.calls.Add(1)
	return c.inner.Movie(ctx, id)
}

func (c *countingDataset) Ratings(ctx context.Context) ([]core.RatingRecord, error) {
	c.calls.Add(1)
	return c.inner.Ratings(ctx)
}

func (c *countingDataset) MovieRatings(ctx context.Context, movieID int64) ([]core.RatingRecord, error) {
	c.calls.Add(1)
	return c.inner.MovieRatings(ctx, movieID)
}

var _ core.Dataset = (*countingDataset)(nil)

func TestCachedAnalytics_Hit(t *testing.T) {
	ds := &countingDataset{inner: testDataset()}
	kv := store.NewMemoryStore()
	defer kv.Close()

	svc := NewCachedAnalytics(&Analytics{
		Dataset: ds,
		KMeans:  cluster.KMeans{K: 2, Seed: 42},
	}, kv, 60)

	ctx := context.Background()
	first, err := svc.UserTasteClusters(ctx, "trig")
	if err != nil {
		t.Fatalf("first call error: %v", err)
	}
	after := ds.calls.Load()

	second, err := svc.UserTasteClusters(ctx, "trig")
	if err != nil {
		t.Fatalf("second call error: %v", err)
	}
	if ds.calls.Load() != after {
		t.Errorf("second call hit the dataset (%d -> %d calls), want cache hit", after, ds.calls.Load())
	}
	if len(first) != len(second) {
		t.Fatalf("cached result len = %d, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i].UserID != second[i].UserID || first[i].Cluster != second[i].Cluster ||
			first[i].X != second[i].X || first[i].Y != second[i].Y {
			t.Errorf("cached point[%d] = %+v, want %+v", i, second[i], first[i])
		}
	}
}

func TestCachedAnalytics_StrategyKeysIndependent(t *testing.T) {
	ds := &countingDataset{inner: testDataset()}
	kv := store.NewMemoryStore()
	defer kv.Close()

	svc := NewCachedAnalytics(&Analytics{
		Dataset: ds,
		KMeans:  cluster.KMeans{K: 2, Seed: 42},
	}, kv, 60)

	ctx := context.Background()
	if _, err := svc.UserTasteClusters(ctx, "trig"); err != nil {
		t.Fatalf("trig error: %v", err)
	}
	after := ds.calls.Load()

	// pca 是不同的 key，不会命中 trig 的缓存
	if _, err := svc.UserTasteClusters(ctx, "pca"); err != nil {
		t.Fatalf("pca error: %v", err)
	}
	if ds.calls.Load() == after {
		t.Errorf("pca call did not hit the dataset, keys may have collided")
	}
}

func TestCachedAnalytics_ErrorNotCached(t *testing.T) {
	ds := &countingDataset{inner: testDataset()}
	kv := store.NewMemoryStore()
	defer kv.Close()

	svc := NewCachedAnalytics(&Analytics{Dataset: ds}, kv, 60)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := svc.MovieRatingLifecycle(ctx, 99); !core.IsNotFound(err) {
			t.Fatalf("call %d err = %v, want NOT_FOUND", i, err)
		}
	}
	// 两次都应打到数据源：失败结果不回填
	if ds.calls.Load() != 2 {
		t.Errorf("dataset calls = %d, want 2", ds.calls.Load())
	}
}

func TestCachedAnalytics_Warmup(t *testing.T) {
	ds := &countingDataset{inner: testDataset()}
	kv := store.NewMemoryStore()
	defer kv.Close()

	svc := NewCachedAnalytics(&Analytics{
		Dataset: ds,
		KMeans:  cluster.KMeans{K: 2, Seed: 42},
	}, kv, 60)

	ctx := context.Background()
	if err := svc.Warmup(ctx); err != nil {
		t.Fatalf("Warmup error: %v", err)
	}

	// 预热后的读取全部命中缓存
	after := ds.calls.Load()
	if _, err := svc.UserTasteClusters(ctx, "trig"); err != nil {
		t.Fatalf("UserTasteClusters error: %v", err)
	}
	if _, err := svc.ClusterInterpretations(ctx, "pca"); err != nil {
		t.Fatalf("ClusterInterpretations error: %v", err)
	}
	if _, err := svc.DatasetSummary(ctx); err != nil {
		t.Fatalf("DatasetSummary error: %v", err)
	}
	if ds.calls.Load() != after {
		t.Errorf("post-warmup reads hit the dataset (%d -> %d calls)", after, ds.calls.Load())
	}
}

func TestCachedAnalytics_TopGenres(t *testing.T) {
	ds := &countingDataset{inner: testDataset()}
	kv := store.NewMemoryStore()
	defer kv.Close()

	svc := NewCachedAnalytics(&Analytics{
		Dataset: ds,
		KMeans:  cluster.KMeans{K: 2, Seed: 42},
	}, kv, 60)
	svc.Rank = stats.NewGenreRank(kv, "")

	ctx := context.Background()
	if err := svc.Warmup(ctx); err != nil {
		t.Fatalf("Warmup error: %v", err)
	}

	// 六个类型各 2 条评分：并列时按名称升序
	top, err := svc.TopGenres(ctx, 2)
	if err != nil {
		t.Fatalf("TopGenres error: %v", err)
	}
	want := []string{"Action", "Adventure"}
	if len(top) != 2 || top[0] != want[0] || top[1] != want[1] {
		t.Errorf("TopGenres = %v, want %v", top, want)
	}

	if none, err := svc.TopGenres(ctx, 0); err != nil || len(none) != 0 {
		t.Errorf("TopGenres(0) = %v, %v, want empty", none, err)
	}
}
