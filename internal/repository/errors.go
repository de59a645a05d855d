package repository

import "errors"

// 参照先が存在しないを統一
var ErrNotFound = errors.New("not found")
