package storage

import "fmt"

// ErrSchemaMissing is returned when a target table does not exist. The seed
// loader never creates schema; run the migrate command first.
var ErrSchemaMissing = fmt.Errorf("schema missing")

// ErrStorageUnavailable is returned when the store cannot be opened or a
// transaction cannot be started or committed.
var ErrStorageUnavailable = fmt.Errorf("storage unavailable")
