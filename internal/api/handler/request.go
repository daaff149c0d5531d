package handler

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/service"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/textproc"
)

// bindObject binds a JSON object body. Key presence matters, so the body is
// kept as a map instead of a struct.
func bindObject(c *gin.Context) (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, fmt.Errorf("decode request body: %w", err)
	}
	if body == nil {
		return nil, fmt.Errorf("decode request body: expected a JSON object")
	}
	return body, nil
}

func requireField(body map[string]interface{}, key string) (interface{}, error) {
	v, ok := body[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", service.ErrMissingField, key)
	}
	return v, nil
}

func stringField(body map[string]interface{}, key string) (string, error) {
	v, err := requireField(body, key)
	if err != nil {
		return "", err
	}
	return textproc.Stringify(v), nil
}

func intField(body map[string]interface{}, key string) (int, error) {
	v, err := requireField(body, key)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%s: %v is not an integer", key, n)
		}
		// float64(math.MaxInt) rounds up, so the upper bound is exclusive.
		if n < math.MinInt || n >= math.MaxInt {
			return 0, fmt.Errorf("%s: %v is out of range", key, n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return i, nil
	}
	return 0, fmt.Errorf("%s: unsupported type %T", key, v)
}

func parseSaveReview(body map[string]interface{}) (*service.SaveReviewInput, error) {
	var (
		in  service.SaveReviewInput
		err error
	)
	if in.Name, err = stringField(body, "name"); err != nil {
		return nil, err
	}
	if in.Email, err = stringField(body, "email"); err != nil {
		return nil, err
	}
	if in.ProductName, err = stringField(body, "productName"); err != nil {
		return nil, err
	}
	if in.Rating, err = intField(body, "rating"); err != nil {
		return nil, err
	}
	if in.ReviewText, err = stringField(body, "reviewText"); err != nil {
		return nil, err
	}
	return &in, nil
}
