package config

import "os"

func IsDebug() bool {
	return os.Getenv("CMDKIT_DEBUG") == "1"
}
