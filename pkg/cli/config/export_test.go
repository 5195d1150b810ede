package config

// NewLogger builds a Logger with explicit values, bypassing flag parsing
func NewLogger(level, format, output string) *Logger {
	return &Logger{level: level, format: format, output: output}
}

// NewColors builds a Colors config with an explicit path
func NewColors(path string) *Colors {
	return &Colors{path: path}
}
