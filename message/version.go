package message

// ProtocolVersion is the protocol revision tag a message declares. The
// constant value is the literal wire tag.
type ProtocolVersion string

// VersionADTP20 is the only protocol revision currently defined.
const VersionADTP20 ProtocolVersion = "ADTP/2.0"

func (v ProtocolVersion) String() string {
	return string(v)
}
