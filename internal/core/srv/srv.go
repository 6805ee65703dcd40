package srv

type Srv struct {
	ai *AI
}

func SetupSrvs(opts ...ApplyFunc) *Srv {
	a := &Srv{
		ai: newAI(),
	}

	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (s *Srv) AI() *AI {
	return s.ai
}
