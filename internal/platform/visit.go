package platform

// Visit runs fn with n and releases n when fn returns, including when fn
// panics. A nil node is not visited.
func Visit(n Node, fn func(Node)) {
	if n == nil {
		return
	}
	defer n.Recycle()
	fn(n)
}
