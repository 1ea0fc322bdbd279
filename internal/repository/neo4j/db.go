// Package neo4j 实现了基于 Neo4j 图数据库的仓库层。
// 所有操作都是参数化的 Cypher 查询，节点和关系的写入尽量
// 组合在同一条查询里完成。
package neo4j

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Runner 抽象了 Cypher 查询的执行，便于在测试中替换
type Runner interface {
	Run(ctx context.Context, query string, params map[string]interface{}) (*neo4j.EagerResult, error)
}

// DB 封装官方驱动，是所有仓库共享的查询执行器
type DB struct {
	driver neo4j.DriverWithContext
	dbName string
}

// NewDB 创建数据库连接
func NewDB(uri, username, password, dbName string) (*DB, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("创建 Neo4j 驱动失败: %w", err)
	}
	return &DB{driver: driver, dbName: dbName}, nil
}

// Verify 测试数据库连接
func (db *DB) Verify(ctx context.Context) error {
	return db.driver.VerifyConnectivity(ctx)
}

// Close 关闭驱动及其连接池
func (db *DB) Close(ctx context.Context) error {
	return db.driver.Close(ctx)
}

// Run 执行一条 Cypher 查询并缓冲全部结果。
// ExecuteQuery 自带会话和事务管理，读写通用。
func (db *DB) Run(ctx context.Context, query string, params map[string]interface{}) (*neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(
		ctx,
		db.driver,
		query,
		params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(db.dbName),
	)
	if err != nil {
		return nil, fmt.Errorf("执行 Neo4j 查询失败: %w", err)
	}
	return result, nil
}

// recordNode 从结果记录里取出指定别名的节点
func recordNode(record *neo4j.Record, key string) (neo4j.Node, bool) {
	value, ok := record.Get(key)
	if !ok {
		return neo4j.Node{}, false
	}
	node, ok := value.(neo4j.Node)
	return node, ok
}

func propString(props map[string]interface{}, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

func propInt(props map[string]interface{}, key string) int {
	switch v := props[key].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func propBool(props map[string]interface{}, key string) bool {
	if v, ok := props[key].(bool); ok {
		return v
	}
	return false
}

// propTime 解析以 RFC3339 字符串存储的时间属性
func propTime(props map[string]interface{}, key string) time.Time {
	s := propString(props, key)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
