package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrPeriodNotFound = errors.New("Fiscal period not found")
