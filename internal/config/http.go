package config

type HTTP struct {
	Port    uint32 `env:"PORT" envDefault:"8000"`
	Swagger bool   `env:"HTTP_SWAGGER" envDefault:"true"`
}
