package validator

import (
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	zhtranslations "github.com/go-playground/validator/v10/translations/zh"
)

var (
	once sync.Once
	// Trans 全局翻译器
	Trans ut.Translator
)

// LazyInitGinValidator 替换gin默认的validator配置：
// 使用validate标签做校验，label标签作为错误提示里的字段名，并按语言翻译提示
func LazyInitGinValidator(language string) {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.SetTagName("validate")
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			label := fld.Tag.Get("label")
			if label == "" {
				return fld.Name
			}
			return label
		})

		enT := en.New()
		zhT := zh.New()
		uni := ut.New(enT, enT, zhT)
		switch language {
		case "zh":
			Trans, _ = uni.GetTranslator("zh")
			_ = zhtranslations.RegisterDefaultTranslations(v, Trans)
		default:
			Trans, _ = uni.GetTranslator("en")
			_ = entranslations.RegisterDefaultTranslations(v, Trans)
		}
	})
}

// Translate 把校验错误翻译成可读提示
func Translate(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && Trans != nil {
		for _, e := range errs {
			return e.Translate(Trans)
		}
	}
	return err.Error()
}
