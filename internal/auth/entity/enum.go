package entity

// SecondFactor enumerates the supported second authentication factors.
type SecondFactor string

const (
	SecondFactorUnknown   SecondFactor = ""
	SecondFactorTOTP      SecondFactor = "totp"
	SecondFactorEmailCode SecondFactor = "email_code"
)

func (s SecondFactor) String() string {
	return string(s)
}

// SecondFactorFromString parses a configuration value into a SecondFactor.
func SecondFactorFromString(v string) SecondFactor {
	switch v {
	case "totp":
		return SecondFactorTOTP
	case "email_code":
		return SecondFactorEmailCode
	default:
		return SecondFactorUnknown
	}
}
