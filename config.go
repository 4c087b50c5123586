package arith

// EncoderConfig configures an Encoder. The zero value selects the default
// configuration; a nil *EncoderConfig passed to NewEncoder is equivalent to
// &EncoderConfig{}.
//
// EncoderConfig presently carries no public fields. It exists so that a
// future option (for example, the frequency-rescale threshold discussed as
// an open question for very long streams) can be added without breaking
// the Encoder constructor's signature.
type EncoderConfig struct {
	_ struct{} // Blank field to prevent unkeyed struct literals.
}

// DecoderConfig configures a Decoder. See EncoderConfig for the rationale
// behind a presently-empty options struct.
type DecoderConfig struct {
	_ struct{} // Blank field to prevent unkeyed struct literals.
}
