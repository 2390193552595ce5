package castprotocol

// DeviceStatus is a point-in-time RECEIVER_STATUS snapshot pushed by the
// device. It describes the overall session (running applications and device
// volume) and is not retained beyond a single update.
type DeviceStatus struct {
	Applications []Application `json:"applications,omitempty"`
	Volume       *Volume       `json:"volume,omitempty"`
}

// RunningApp returns the application currently in the foreground, or nil
// when the status lists no applications.
func (s *DeviceStatus) RunningApp() *Application {
	if s == nil || len(s.Applications) == 0 {
		return nil
	}
	return &s.Applications[0]
}

// Application describes one receiver application as reported by the device.
type Application struct {
	AppID        string `json:"appId"`
	DisplayName  string `json:"displayName"`
	StatusText   string `json:"statusText"`
	SessionID    string `json:"sessionId"`
	TransportID  string `json:"transportId"`
	IsIdleScreen bool   `json:"isIdleScreen"`
}

// Volume is the device volume. Level is fractional (0.0 to 1.0).
type Volume struct {
	Level float32 `json:"level"`
	Muted bool    `json:"muted"`
}
