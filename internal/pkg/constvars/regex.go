package constvars

const (
	RegexEmail           = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	RegexAllDigits       = `^[0-9]+$`
	RegexPhoneStripChars = `[\s\-().+]`
)
