package trustscore

import "errors"

var ErrTrustScoreNotFound = errors.New("trust score not found")
