package repository

import "github.com/google/uuid"

// idカラムはuuid型。形式が違う値はPostgresがエラーにするので、
// 問い合わせる前に「見つからない」として扱う
func isUUID(ids ...string) bool {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return false
		}
	}
	return true
}
