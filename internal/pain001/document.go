package pain001

import "encoding/xml"

// XML marshaling structs, in schema element order.

type document struct {
	XMLName          xml.Name         `xml:"Document"`
	Xmlns            string           `xml:"xmlns,attr"`
	CstmrCdtTrfInitn cstmrCdtTrfInitn `xml:"CstmrCdtTrfInitn"`
}

type cstmrCdtTrfInitn struct {
	GrpHdr grpHdr   `xml:"GrpHdr"`
	PmtInf []pmtInf `xml:"PmtInf"`
}

type grpHdr struct {
	MsgID    string   `xml:"MsgId"`
	CreDtTm  string   `xml:"CreDtTm"`
	NbOfTxs  string   `xml:"NbOfTxs"`
	CtrlSum  string   `xml:"CtrlSum"`
	InitgPty initgPty `xml:"InitgPty"`
}

type initgPty struct {
	Nm string   `xml:"Nm"`
	ID *partyID `xml:"Id,omitempty"`
}

type partyID struct {
	OrgID orgID `xml:"OrgId"`
}

type orgID struct {
	Othr other `xml:"Othr"`
}

type other struct {
	ID string `xml:"Id"`
}

type pmtInf struct {
	PmtInfID    string        `xml:"PmtInfId"`
	PmtMtd      string        `xml:"PmtMtd"`
	BtchBookg   string        `xml:"BtchBookg"`
	NbOfTxs     string        `xml:"NbOfTxs"`
	CtrlSum     string        `xml:"CtrlSum"`
	PmtTpInf    pmtTpInf      `xml:"PmtTpInf"`
	ReqdExctnDt dateWrapper   `xml:"ReqdExctnDt"`
	Dbtr        *party        `xml:"Dbtr,omitempty"`
	DbtrAcct    *account      `xml:"DbtrAcct,omitempty"`
	DbtrAgt     *agent        `xml:"DbtrAgt,omitempty"`
	CdtTrfTxInf []cdtTrfTxInf `xml:"CdtTrfTxInf"`
}

type pmtTpInf struct {
	SvcLvl code `xml:"SvcLvl"`
}

type code struct {
	Cd string `xml:"Cd"`
}

type dateWrapper struct {
	Dt string `xml:"Dt"`
}

type party struct {
	Nm      string         `xml:"Nm"`
	PstlAdr *postalAddress `xml:"PstlAdr,omitempty"`
}

type postalAddress struct {
	StrtNm string `xml:"StrtNm,omitempty"`
	BldgNb string `xml:"BldgNb,omitempty"`
	PstCd  string `xml:"PstCd,omitempty"`
	TwnNm  string `xml:"TwnNm,omitempty"`
	Ctry   string `xml:"Ctry"`
}

type account struct {
	ID accountID `xml:"Id"`
}

type accountID struct {
	IBAN string `xml:"IBAN"`
}

type agent struct {
	FinInstnID finInstnID `xml:"FinInstnId"`
}

type finInstnID struct {
	BICFI string `xml:"BICFI"`
}

type cdtTrfTxInf struct {
	PmtID    paymentID  `xml:"PmtId"`
	Amt      amount     `xml:"Amt"`
	CdtrAgt  agent      `xml:"CdtrAgt"`
	Cdtr     party      `xml:"Cdtr"`
	CdtrAcct account    `xml:"CdtrAcct"`
	RmtInf   remittance `xml:"RmtInf"`
}

type paymentID struct {
	InstrID    string `xml:"InstrId"`
	EndToEndID string `xml:"EndToEndId"`
}

type amount struct {
	InstdAmt instructedAmount `xml:"InstdAmt"`
}

type instructedAmount struct {
	Ccy   string `xml:"Ccy,attr"`
	Value string `xml:",chardata"`
}

type remittance struct {
	Ustrd string `xml:"Ustrd"`
}
