package repositories

import "errors"

// ErrNotFound aranan kaydın bulunamadığını belirten sentinel hatadır.
// gorm.ErrRecordNotFound repository sınırında bu hataya çevrilir.
var ErrNotFound = errors.New("kayıt bulunamadı")
