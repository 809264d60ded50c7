package feed

import (
	"strconv"

	"github.com/itsatony/go-cuserr"
)

const (
	ErrMsgFetchFailed      = "failed to fetch forecast feed"
	ErrMsgUnexpectedStatus = "unexpected status code"
	ErrMsgParseFailed      = "failed to parse forecast XML"

	ErrCodeFetch = "WX_FEED_FETCH"
	ErrCodeParse = "WX_FEED_PARSE"

	MetaKeyURL    = "url"
	MetaKeyStatus = "status"
)

func newFetchError(url string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeFetch, ErrMsgFetchFailed).
		WithMetadata(MetaKeyURL, url)
}

func newStatusError(url string, status int) error {
	return cuserr.NewValidationError(ErrCodeFetch, ErrMsgUnexpectedStatus).
		WithMetadata(MetaKeyURL, url).
		WithMetadata(MetaKeyStatus, strconv.Itoa(status))
}

func newParseError(url string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeParse, ErrMsgParseFailed).
		WithMetadata(MetaKeyURL, url)
}
