package usecase

// ShouldNotify は在庫が「しきい値より上」から「しきい値以下」に落ちた瞬間だけtrue。
// すでにしきい値以下だった商品は何度売れても再通知しない。
func ShouldNotify(oldStock, newStock, threshold int64) bool {
	return oldStock > threshold && newStock <= threshold
}
