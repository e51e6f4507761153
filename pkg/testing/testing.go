// Package testing prepares the process for package tests. Import it for side
// effects only:
//
//	import _ "liyu1981.xyz/farm-sustainability-service/pkg/testing"
//
// It moves the working directory to the project root and, unless the caller
// already chose one, points the log files at a throwaway directory so test
// runs never append to the service's own logs.
package testing

import (
	"os"
	"path"
	"runtime"
)

const logsDirEnvKey = "FARM_LOGS_DIR"

func init() {
	_, filename, _, _ := runtime.Caller(0)
	root := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(root); err != nil {
		panic(err)
	}

	if _, found := os.LookupEnv(logsDirEnvKey); found {
		return
	}
	dir, err := os.MkdirTemp("", "farm-test-logs-")
	if err != nil {
		panic(err)
	}
	if err := os.Setenv(logsDirEnvKey, dir); err != nil {
		panic(err)
	}
}
