package main

import (
	"sync"

	"github.com/suparena/inmemstore/datastore/testmodels"
)

// registerModels installs the payload factories scenario fixtures are built
// with. The type registry panics on duplicates, so it runs once per process.
var registerModels = sync.OnceFunc(func() {
	testmodels.Register()
})
