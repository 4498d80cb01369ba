package config

// Merge overlays the non-zero fields of override onto base and returns a new config.
func Merge(base, override *Config) *Config {
	out := *base
	if override == nil {
		return &out
	}

	s := override.Server
	if s.Port != "" {
		out.Server.Port = s.Port
	}
	if s.Env != "" {
		out.Server.Env = s.Env
	}
	if len(s.AllowedOrigins) > 0 {
		out.Server.AllowedOrigins = s.AllowedOrigins
	}
	if s.RateLimit.Capacity != 0 {
		out.Server.RateLimit.Capacity = s.RateLimit.Capacity
	}
	if s.RateLimit.Refill != 0 {
		out.Server.RateLimit.Refill = s.RateLimit.Refill
	}

	cc := override.Cache
	if cc.Backend != "" {
		out.Cache.Backend = cc.Backend
	}
	if cc.TTL != 0 {
		out.Cache.TTL = cc.TTL
	}
	if cc.RedisAddr != "" {
		out.Cache.RedisAddr = cc.RedisAddr
	}
	if cc.RedisDB != 0 {
		out.Cache.RedisDB = cc.RedisDB
	}

	out.ReferencesFile = override.ReferencesFile
	out.References = MergeReferences(base.References, override.References)
	out.Defaults = MergeDefaults(base.Defaults, override.Defaults)
	return &out
}

// MergeReferences replaces whole tables; entries are never mixed across sources.
func MergeReferences(base, override ReferencesConfig) ReferencesConfig {
	out := base
	if override.GrainWeightGrams != 0 {
		out.GrainWeightGrams = override.GrainWeightGrams
	}
	if len(override.Chessboard) > 0 {
		out.Chessboard = override.Chessboard
	}
	if len(override.Viral) > 0 {
		out.Viral = override.Viral
	}
	if len(override.HeadlineChessboard) > 0 {
		out.HeadlineChessboard = override.HeadlineChessboard
	}
	if len(override.HeadlineViral) > 0 {
		out.HeadlineViral = override.HeadlineViral
	}
	return out
}

// MergeDefaults overlays non-zero parameter fields.
// Note: a zero initial capital or contribution cannot be expressed this way; pass it
// per request instead.
func MergeDefaults(base, override DefaultsConfig) DefaultsConfig {
	out := base
	if override.Chessboard.Field != 0 {
		out.Chessboard.Field = override.Chessboard.Field
	}

	c := override.Compound
	if c.Initial != 0 {
		out.Compound.Initial = c.Initial
	}
	if c.Contribution != 0 {
		out.Compound.Contribution = c.Contribution
	}
	if c.Years != 0 {
		out.Compound.Years = c.Years
	}
	if c.RatePercent != 0 {
		out.Compound.RatePercent = c.RatePercent
	}

	v := override.Viral
	if v.Starters != 0 {
		out.Viral.Starters = v.Starters
	}
	if v.Factor != 0 {
		out.Viral.Factor = v.Factor
	}
	if v.Rounds != 0 {
		out.Viral.Rounds = v.Rounds
	}

	r := override.Revenue
	if r.Start != 0 {
		out.Revenue.Start = r.Start
	}
	if r.MonthlyRatePercent != 0 {
		out.Revenue.MonthlyRatePercent = r.MonthlyRatePercent
	}
	if r.Months != 0 {
		out.Revenue.Months = r.Months
	}
	if r.LinearDelta != 0 {
		out.Revenue.LinearDelta = r.LinearDelta
	}
	if r.RevenuePerEmployee != 0 {
		out.Revenue.RevenuePerEmployee = r.RevenuePerEmployee
	}
	if r.Headcount != 0 {
		out.Revenue.Headcount = r.Headcount
	}
	return out
}
