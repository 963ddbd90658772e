package service

type Config struct {
	SenderBIC    string `envconfig:"MT103_SENDER_BIC" default:"BNPAFRPPAXXX"`
	ReceiverBIC  string `envconfig:"MT103_RECEIVER_BIC" default:"COBADEFFXXX"`
	ServiceLevel string `envconfig:"PAIN001_SERVICE_LEVEL"`
	Initiator    string `envconfig:"PAIN001_INITIATOR" default:"CLI User"`
}
