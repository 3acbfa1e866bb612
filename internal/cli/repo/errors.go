package repo

import "errors"

// ErrNotFound возвращается, когда запись с указанным id отсутствует.
var ErrNotFound = errors.New("record not found")
