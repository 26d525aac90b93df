package repository

import (
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// timeLayout is RFC3339 with fixed-width nanoseconds so stored timestamps
// order lexicographically, which the created_at range keys rely on.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// withNow injects the current timestamp under :now so update expressions can
// touch updated_at without every caller building it.
func withNow(values map[string]types.AttributeValue) map[string]types.AttributeValue {
	values[":now"] = &types.AttributeValueMemberS{Value: formatTime(time.Now())}
	return values
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}
