package model

// 認証済みの操作者（JWTから復元）
type Principal struct {
	UserID string
	Name   string
	Role   Role
	ShopID string
}

func (p Principal) IsOwner() bool {
	return p.Role == RoleOwner
}
