package constants

import "time"

const (
	CacheKeyUserByEmail    = "habit:user:email:%s"
	CacheKeyUserGeneration = "habit:user:gen:%s"
)

const (
	CacheExpireUserByEmail = 10 * time.Minute
)
