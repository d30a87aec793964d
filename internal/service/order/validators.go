package order

func isValidQuantity(quantity int64) bool {
	return quantity > 0
}

func isValidPrice(price float64) bool {
	return price > 0
}
