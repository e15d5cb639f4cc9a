package util

import "errors"

var (
	ErrEmailRegistered  = errors.New("该邮箱已被注册")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrEmptySubmission  = errors.New("submission contains no answers")
	ErrInvalidAnswer    = errors.New("answer does not match an active question/option pair")
	ErrTestNotFound     = errors.New("test record not found")
	ErrCatalogLookup    = errors.New("catalog lookup failed for selected aptitudes")
	ErrSubmissionFailed = errors.New("test submission failed")
)
