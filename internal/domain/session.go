package domain

// Session holds one user's navigation context: the item lists that were
// last rendered at each level and the ancestors selected so far. Callback
// indices are positions into these lists, so they stay valid only for the
// render that produced them.
type Session struct {
	Sections  []string
	Semesters []string
	Subjects  []string
	Files     []string

	SelectedSection  string
	SelectedSemester string
	SelectedSubject  string
}

// Reset starts the session over at the section level.
func (s *Session) Reset(sections []string) {
	s.Sections = sections
	s.Semesters = nil
	s.Subjects = nil
	s.Files = nil
	s.SelectedSection = ""
	s.SelectedSemester = ""
	s.SelectedSubject = ""
}

// EnterSection records a section choice and its semester listing.
// State below the semester level belongs to a sibling branch and is cleared.
func (s *Session) EnterSection(section string, semesters []string) {
	s.SelectedSection = section
	s.Semesters = semesters
	s.Subjects = nil
	s.Files = nil
	s.SelectedSemester = ""
	s.SelectedSubject = ""
}

// EnterSemester records a semester choice and its subject listing.
func (s *Session) EnterSemester(semester string, subjects []string) {
	s.SelectedSemester = semester
	s.Subjects = subjects
	s.Files = nil
	s.SelectedSubject = ""
}

// EnterSubject records a subject choice and its file listing.
func (s *Session) EnterSubject(subject string, files []string) {
	s.SelectedSubject = subject
	s.Files = files
}
