package hal

// Security is the authentication mode advertised by a beacon.
type Security uint8

const (
	SecurityOpen Security = iota
	SecurityWEP
	SecurityWPA
	SecurityWPA2
	SecurityWPAWPA2
	SecurityWPA2Enterprise
	SecurityWPA3
	SecurityWPA2WPA3
	SecurityUnknown
)

func (s Security) String() string {
	switch s {
	case SecurityOpen:
		return "OPEN"
	case SecurityWEP:
		return "WEP"
	case SecurityWPA:
		return "WPA"
	case SecurityWPA2:
		return "WPA2"
	case SecurityWPAWPA2:
		return "WPA/WPA2"
	case SecurityWPA2Enterprise:
		return "WPA2-EAP"
	case SecurityWPA3:
		return "WPA3"
	case SecurityWPA2WPA3:
		return "WPA2/WPA3"
	default:
		return "?"
	}
}

// AccessPoint is one raw scan result as reported by the radio.
type AccessPoint struct {
	SSID     string
	RSSI     int32 // dBm
	Channel  int32
	Security Security
}

// AccessPoints adapts a plain slice to the Len/At shape consumers read scan results through.
type AccessPoints []AccessPoint

func (a AccessPoints) Len() int             { return len(a) }
func (a AccessPoints) At(i int) AccessPoint { return a[i] }

// ScanPhase is the radio's view of the scan lifecycle.
type ScanPhase uint8

const (
	// ScanIdle means no scan is running and no results are held.
	ScanIdle ScanPhase = iota
	// ScanRunning means an asynchronous scan is still in progress.
	ScanRunning
	// ScanDone means results are available until FreeResults.
	ScanDone
	// ScanFailed means the last scan aborted; no results are held.
	ScanFailed
)

func (p ScanPhase) String() string {
	switch p {
	case ScanIdle:
		return "idle"
	case ScanRunning:
		return "running"
	case ScanDone:
		return "done"
	case ScanFailed:
		return "failed"
	default:
		return "?"
	}
}

// ScanStatus is a tagged scan status. Count is meaningful only for ScanDone.
type ScanStatus struct {
	Phase ScanPhase
	Count int
}

// Radio is the Wi-Fi scanning capability.
//
// ScanStatus is safe to call at any cadence. AccessPoint(i) is valid only between a ScanDone
// status and the matching FreeResults call.
type Radio interface {
	StartScan(async, includeHidden bool) error
	ScanStatus() ScanStatus
	AccessPoint(i int) AccessPoint
	FreeResults()
}

type nullRadio struct{}

func (nullRadio) StartScan(bool, bool) error { return ErrNotImplemented }

func (nullRadio) ScanStatus() ScanStatus { return ScanStatus{Phase: ScanIdle} }

func (nullRadio) AccessPoint(int) AccessPoint { return AccessPoint{} }

func (nullRadio) FreeResults() {}
