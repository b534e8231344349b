package fetcher

import "fmt"

// TransferError reports a task whose transfer still failed once its retry
// budget was exhausted. It identifies the (item, key) pair and carries the
// last underlying cause.
type TransferError struct {
	Collection string
	Item       string
	Key        string
	Err        error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer failed for %s/%s/%s: %v", e.Collection, e.Item, e.Key, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}
