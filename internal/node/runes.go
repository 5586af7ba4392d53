package node

func isBreak(b byte) bool { return b == '\n' || b == '\r' }
