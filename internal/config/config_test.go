package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("KAFKA_BROKERS", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "@ucmerced.edu", cfg.EmailDomain)
	assert.Equal(t, 300*time.Second, cfg.FeedCacheTTL)
	assert.Equal(t, "club-activity", cfg.KafkaTopic)
	assert.Nil(t, cfg.KafkaBrokers)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ADMIN_CODES", "CODE-1, CODE-2,,")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("FEED_CACHE_TTL_SECONDS", "60")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"CODE-1", "CODE-2"}, cfg.AdminCodes)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 60*time.Second, cfg.FeedCacheTTL)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a"}, splitList("a"))
	assert.Equal(t, []string{"a", "b"}, splitList(" a , b "))
}
