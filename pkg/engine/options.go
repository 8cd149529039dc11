package engine

type Options struct {
	Hash     int
	MaxDepth int
}

func NewOptions() Options {
	return Options{
		Hash:     16,
		MaxDepth: 0,
	}
}

func (o *Options) depthLimit(requested int) int {
	var limit = maxHeight - 1
	if o.MaxDepth > 0 && o.MaxDepth < limit {
		limit = o.MaxDepth
	}
	if requested > 0 && requested < limit {
		limit = requested
	}
	return limit
}
