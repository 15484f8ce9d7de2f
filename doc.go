// Package lenskit 是一个电影评分分析工具包（MovieLens Analytics Kit）。
//
// 设计要点：
// - 快照纯函数：所有分析操作都是数据集快照上的纯函数，请求级无共享可变状态
// - 双管线：特征 → 投影（trig/pca）→ k-means → 解释；摄取 → 生命周期分段
// - Cache-aside：缓存以装饰器包在操作入口外，不侵入算法本身
package lenskit

import "github.com/rushteam/lenskit/service"

// 轻量 facade：便于用户直接 import "lenskit" 使用核心抽象。
type Service = service.Service
type Analytics = service.Analytics
type CachedAnalytics = service.CachedAnalytics

// NewCachedAnalytics 见 service.NewCachedAnalytics。
var NewCachedAnalytics = service.NewCachedAnalytics
