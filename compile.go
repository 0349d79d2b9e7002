package main

// codeRegionSize computes spec.md §4.3's executable-region size estimate:
// ceil(k*(|code|+1), 1024) bytes, rounded up to the next page-friendly
// kilobyte. k defaults to 10 but is configurable via
// BFJIT_CODE_SIZE_MULTIPLIER (config.go) for pathological programs.
func codeRegionSize(codeLen, multiplier int) int {
	if multiplier <= 0 {
		multiplier = 10
	}
	n := multiplier * (codeLen + 1)
	return ((n + 1023) / 1024) * 1024
}

// Compile runs the full pipeline — canonicalize, build IR, generate x86-64
// machine code, seal it into executable memory — and returns a callable
// native function plus the memory backing it. The caller owns the returned
// ExecutableMemory and may Release it once done invoking the function.
func Compile(source []byte, cfg Config) (JittedFunc, *ExecutableMemory, error) {
	prevVerbose := VerboseMode
	VerboseMode = cfg.Verbose
	defer func() { VerboseMode = prevVerbose }()

	canon := Canonicalize(source)

	ops, err := BuildIR(canon)
	if err != nil {
		return nil, nil, err
	}

	eb, err := Generate(ops)
	if err != nil {
		return nil, nil, err
	}

	code := eb.Bytes()
	mem, err := AllocateExecutableMemory(codeRegionSize(len(code), cfg.CodeSizeMultiplier))
	if err != nil {
		return nil, nil, err
	}
	if err := mem.Write(code); err != nil {
		return nil, nil, err
	}
	if err := mem.Seal(); err != nil {
		return nil, nil, err
	}

	return mem.AsFunc(), mem, nil
}
