package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User 结构体表示用户模型
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password"` // 密码哈希不应在JSON中暴露
	IsActive     bool               `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// OTP 注册验证码，到期后视为无效
type OTP struct {
	ID       primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	OTPCode  string             `json:"-" bson:"otp_code"`
	ExpireAt time.Time          `json:"expire_at" bson:"expire_at"`
}
