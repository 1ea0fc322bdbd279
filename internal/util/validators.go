package util

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ValidateObjectID 验证字段是否为服务端生成的 UUID 标识符
func ValidateObjectID(fl validator.FieldLevel) bool {
	id, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
