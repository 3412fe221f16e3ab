package rest

type Key string

const (
	AuthUserKey Key = "CURRENT_USER"
)
