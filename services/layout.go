package services

// Viewport breakpoints in CSS pixels.
const (
	MobileBreakpoint  = 768
	DesktopBreakpoint = 1024
)

// Layout 화면 폭에 따른 사이드바 상태. 모든 연산은 새 값을 돌려준다.
type Layout struct {
	Width       int  `json:"width"`
	Mobile      bool `json:"isMobile"`
	Collapsed   bool `json:"isCollapsed"`
	SidebarOpen bool `json:"sidebarOpen"`
}

// NewLayout 초기 상태: 모바일이면 닫힘, 그 외에는 열림
func NewLayout(width int) Layout {
	l := Layout{}.measure(width)
	l.SidebarOpen = !l.Mobile
	return l
}

func (l Layout) measure(width int) Layout {
	l.Width = width
	l.Mobile = width < MobileBreakpoint
	l.Collapsed = width >= MobileBreakpoint && width < DesktopBreakpoint
	return l
}

// Resize 모바일로 바뀌면 사이드바를 닫고, 데스크톱으로 바뀌면 연다.
func (l Layout) Resize(width int) Layout {
	wasMobile := l.Mobile
	wasDesktop := !l.Mobile && !l.Collapsed
	next := l.measure(width)
	desktop := !next.Mobile && !next.Collapsed

	switch {
	case next.Mobile && !wasMobile:
		next.SidebarOpen = false
	case desktop && !wasDesktop:
		next.SidebarOpen = true
	}
	return next
}

func (l Layout) Toggle() Layout {
	l.SidebarOpen = !l.SidebarOpen
	return l
}

// CloseOnNavigate 모바일에서만 닫는다.
func (l Layout) CloseOnNavigate() Layout {
	if l.Mobile {
		l.SidebarOpen = false
	}
	return l
}
