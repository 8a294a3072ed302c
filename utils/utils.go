package utils

import (
	"database/sql/driver"
	"fmt"
	"math"
	"math/rand"
	"time"

	"tradesense/internal/consts"
)

// RandString generate rand string with specified length
func RandString(length int) string {
	str := "0123456789abcdefghijklmnopqrstuvwxyz"
	data := []byte(str)
	var result []byte
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < length; i++ {
		result = append(result, data[r.Intn(len(data))])
	}
	return string(result)
}

func ContainsStr(slice []string, item string) bool {
	for _, e := range slice {
		if e == item {
			return true
		}
	}
	return false
}

// Round2 金额保留两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Stamp2str 时间戳转字符串
func Stamp2str(timestamp int64) string {
	if timestamp == 0 {
		return ""
	}
	return time.Unix(timestamp, 0).Format(consts.TimeLayout)
}

// Str2stamp 字符串转时间戳
func Str2stamp(str string) int64 {
	t, err := time.Parse(consts.TimeLayout, str)
	if err != nil {
		return 0
	}
	return t.Unix()
}

// JsonTime 统一时间的json格式和数据库存储格式
type JsonTime time.Time

func (t JsonTime) MarshalJSON() ([]byte, error) {
	tt := time.Time(t)
	if tt.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", tt.Format(consts.TimeLayout))), nil
}

func (t *JsonTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == `""` || s == "null" {
		*t = JsonTime(time.Time{})
		return nil
	}
	tt, err := time.ParseInLocation(`"`+consts.TimeLayout+`"`, s, time.Local)
	if err != nil {
		return err
	}
	*t = JsonTime(tt)
	return nil
}

// Value 实现driver.Valuer，gorm写库使用
func (t JsonTime) Value() (driver.Value, error) {
	tt := time.Time(t)
	if tt.IsZero() {
		return nil, nil
	}
	return tt, nil
}

// Scan 实现sql.Scanner，gorm读库使用
func (t *JsonTime) Scan(v interface{}) error {
	if v == nil {
		*t = JsonTime(time.Time{})
		return nil
	}
	if value, ok := v.(time.Time); ok {
		*t = JsonTime(value)
		return nil
	}
	return fmt.Errorf("can not convert %v to JsonTime", v)
}

func (t JsonTime) Time() time.Time {
	return time.Time(t)
}
