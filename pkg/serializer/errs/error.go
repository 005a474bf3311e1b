package errs

import "errors"

var (
	ErrMarshalJSON            = errors.New("err marshal json")
	ErrUnmarshalJSON          = errors.New("err unmarshal json")
	ErrMarshalYAML            = errors.New("err marshal yaml")
	ErrMarshalMsgpack         = errors.New("err marshal msgpack")
	ErrMapstructureNewDecoder = errors.New("err mapstructure new decoder")
	ErrMapstructureDecode     = errors.New("err mapstructure decode")
	ErrTimespanValue          = errors.New("err timespan value")
)
