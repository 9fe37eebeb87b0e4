package a

import "os"

func Configure() {
	os.Setenv("QTYPES_FORMAT", "hex")
}
