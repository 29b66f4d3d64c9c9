package common

// AuthorizationHeaderName is the HTTP header carrying the access token.
const AuthorizationHeaderName = "Authorization"

// TokenTypeBearer is the only accepted authorization scheme and the
// token_type returned by login.
const TokenTypeBearer = "bearer"
