package analysis

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
