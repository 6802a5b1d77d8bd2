package turkishsearch

import (
	"strings"
	"unicode"
)

// ToLower Türkçe büyük/küçük harf kurallarıyla (İ->i, I->ı) küçültür.
func ToLower(s string) string {
	return strings.ToLowerSpecial(unicode.TurkishCase, s)
}

// SQLFilter verilen sütun için büyük/küçük harfe duyarsız LIKE parçası üretir.
// Dönen fragment GORM Where ile, args ile birlikte kullanılır.
func SQLFilter(column, term string) (string, []interface{}) {
	needle := "%" + ToLower(strings.TrimSpace(term)) + "%"
	return "LOWER(" + column + ") LIKE ?", []interface{}{needle}
}
