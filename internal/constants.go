package internal

const (
	COOKIE_VISITOR_STATE_NAME = "hs_visitor"
	HEADER_REQUEST_ID         = "X-Request-Id"
)
