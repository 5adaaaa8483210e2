package mongodb

import (
	"context"
	"time"

	"github.com/Rango-SAD/lost-and-found-project/internal/model"
	"github.com/Rango-SAD/lost-and-found-project/internal/store"
	"github.com/Rango-SAD/lost-and-found-project/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type userRepository struct {
	store *store.Store
}

func NewUserRepository(s *store.Store) *userRepository {
	return &userRepository{store: s}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	user.IsActive = true
	user.CreatedAt = time.Now()

	id, err := r.store.InsertOne(ctx, store.CollUsers, user)
	if err != nil {
		util.Logger.Error("创建用户失败", zap.Error(err), zap.String("username", user.Username))
		return nil, err
	}

	user.ID = id
	util.Logger.Info("用户创建成功", zap.String("username", user.Username))
	return user, nil
}

// FindByUsername 按用户名查找用户，未命中返回 (nil, nil)
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// FindByEmail 按邮箱查找用户，未命中返回 (nil, nil)
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := r.store.Collection(store.CollUsers).FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type otpRepository struct {
	store *store.Store
}

func NewOTPRepository(s *store.Store) *otpRepository {
	return &otpRepository{store: s}
}

// Upsert 写入或刷新指定邮箱的验证码
func (r *otpRepository) Upsert(ctx context.Context, email, code string, expireAt time.Time) error {
	opts := options.Update().SetUpsert(true)
	update := bson.M{"$set": bson.M{"otp_code": code, "expire_at": expireAt}}

	_, err := r.store.Collection(store.CollOTPCodes).UpdateOne(ctx, bson.M{"email": email}, update, opts)
	if err != nil {
		util.Logger.Error("写入验证码失败", zap.Error(err), zap.String("email", email))
	}
	return err
}

// FindByEmailAndCode 查找匹配的验证码，未命中返回 (nil, nil)
func (r *otpRepository) FindByEmailAndCode(ctx context.Context, email, code string) (*model.OTP, error) {
	var otp model.OTP
	err := r.store.Collection(store.CollOTPCodes).
		FindOne(ctx, bson.M{"email": email, "otp_code": code}).Decode(&otp)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.store.Collection(store.CollOTPCodes).DeleteMany(ctx, bson.M{"email": email})
	return err
}
