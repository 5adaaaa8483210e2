package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rango-SAD/lost-and-found-project/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// 集合名称
const (
	CollPosts      = "posts"
	CollCategories = "categories"
	CollComments   = "comments"
	CollReports    = "reports"
	CollUsers      = "users"
	CollOTPCodes   = "otp_codes"
)

var (
	// ErrNoDocument 表示指定ID没有匹配的文档
	ErrNoDocument = errors.New("文档不存在")
	// ErrInvalidID 表示标识符不是合法的 ObjectID
	ErrInvalidID = errors.New("无效的文档ID")
)

// Store 封装 MongoDB 连接，在启动时构造并注入各存储库
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect 建立数据库连接并验证连通性
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Close 在应用关闭时断开连接
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes 创建帖子的全文索引和标签索引
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(CollPosts).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "description", Value: "text"},
			},
		},
		{
			Keys: bson.D{{Key: "tag", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("创建索引失败: %w", err)
	}

	util.Logger.Info("索引创建完成", zap.String("collection", CollPosts))
	return nil
}

// Collection 返回底层集合句柄
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// InsertOne 插入一条文档并返回存储分配的ID
func (s *Store) InsertOne(ctx context.Context, coll string, doc interface{}) (primitive.ObjectID, error) {
	res, err := s.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("存储返回了意外的ID类型: %T", res.InsertedID)
	}
	return id, nil
}

// FindByID 按ID查找一条文档，未命中返回 ErrNoDocument
func (s *Store) FindByID(ctx context.Context, coll, id string, out interface{}) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	err = s.db.Collection(coll).FindOne(ctx, bson.M{"_id": oid}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNoDocument
	}
	return err
}

// Find 按过滤条件查询文档列表
func (s *Store) Find(ctx context.Context, coll string, filter interface{}, opts *options.FindOptions, out interface{}) error {
	cursor, err := s.db.Collection(coll).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

// UpdateByID 按ID应用更新并返回更新后的文档，未命中返回 ErrNoDocument
func (s *Store) UpdateByID(ctx context.Context, coll, id string, update interface{}, out interface{}) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.db.Collection(coll).FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNoDocument
	}
	return err
}

// DeleteByID 按ID删除文档，未命中返回 ErrNoDocument
func (s *Store) DeleteByID(ctx context.Context, coll, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := s.db.Collection(coll).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

// IncrementByID 对指定字段做原子自增，返回自增后的文档。
// 自增与读取在存储端一步完成，并发举报不会丢失计数。
func (s *Store) IncrementByID(ctx context.Context, coll, id, field string, delta int, out interface{}) error {
	return s.UpdateByID(ctx, coll, id, bson.M{"$inc": bson.M{field: delta}}, out)
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
