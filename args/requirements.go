package args

// CollectRequirements returns reqs extended with the arguments required
// by arg, if arg is itself required. It is meant to be called by the code
// owning a set of descriptors, once each of them has been built.
func CollectRequirements(reqs []string, arg Arg) []string {
	if !arg.IsSet(Required) {
		return reqs
	}

	return append(reqs, arg.Requires()...)
}
