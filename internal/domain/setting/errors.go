package setting

import "errors"

var ErrInvalidSettingValue = errors.New("setting value is not a valid integer")
