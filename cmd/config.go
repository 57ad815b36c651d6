package main

import "time"

type Config struct {
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
	Host           string        `env:"HOST,default=localhost"`
	Port           int           `env:"PORT,default=8080"`
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true"`
	ChannelSecret  string        `env:"LINE_CHANNEL_SECRET,required=true"`
	ChannelToken   string        `env:"LINE_CHANNEL_TOKEN,required=true"`
	AdminTargetID  string        `env:"ADMIN_TARGET_ID"`
	BatchTimeout   time.Duration `env:"BATCH_TIMEOUT,default=8s"`
	DedupeCapacity int           `env:"DEDUPE_CAPACITY,default=10000"`
	MemberCountTTL time.Duration `env:"MEMBER_COUNT_TTL,default=5m"`
	ContentTTL     time.Duration `env:"CONTENT_CACHE_TTL,default=5m"`
	NotifyBuffer   int           `env:"NOTIFY_BUFFER_SIZE,default=64"`
}
