package hazardforms

import "errors"

// ErrMissingRequiredFields คือ error เมื่อ form ขาด field ที่จำเป็น
// (company, location, jobDescription, date). Maps to a 400 at the HTTP layer.
var ErrMissingRequiredFields = errors.New("missing required fields")
