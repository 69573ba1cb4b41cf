package server

type Config struct {
	AllowOrigins []string
}
