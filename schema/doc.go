// Package schema loads class hierarchy declarations from YAML and
// materializes them as live classes, with every inheritance and
// finality rule enforced by the same construction gate Go-built
// classes pass through.
//
// What:
//
//   - Load / LoadFile: strict YAML decoding (unknown fields rejected)
//     plus structural validation of the document model.
//   - Catalog: a thread-safe name registry. Pre-define classes built in
//     Go code and declaration files can extend them.
//   - Build: materialize a document into a catalog, fail-fast. Members
//     become declaration stubs; invoking one yields
//     core.ErrNotImplemented.
//   - Verify: check a whole document continue-on-violation, producing a
//     Report of accepted classes, violations, and sealed member names.
//     Decisions log through zap (WithLogger).
//
// Why:
//   - Declare plugin surfaces and sealed contracts as data, not code
//   - Vet hierarchy changes in CI before any implementation exists
//   - Seed registries from reviewed, diffable documents
//
// Document model:
//
//	classes:
//	  - name: Codec
//	    members:
//	      - name: encode
//	        final: true
//	      - name: version
//	        kind: property
//	        getter: {final: true}
//	        setter: {}
//	  - name: JSONCodec
//	    bases: [Codec]
//	    final: true
//
// Errors:
//
//   - ErrNilFile, ErrNilCatalog     nil document or catalog
//   - ErrEmptyName                  unnamed class, base, or member
//   - ErrDuplicateClass             class name declared or defined twice
//   - ErrDuplicateMember            member name declared twice in a class
//   - ErrUnknownKind                member kind outside the four known ones
//   - ErrBadAccessor                accessor on a non-property member
//   - ErrNoAccessors                property without a single accessor
//   - ErrUnknownBase                base name resolving to no class
//   - ErrClassNotFound              catalog lookup miss
//   - core.ErrFinality              violations surfaced by Build and Verify
//
// Functions:
//
//   - Load(r io.Reader) (*File, error)
//   - LoadFile(path string) (*File, error)
//   - (*File).Validate() error
//   - NewCatalog() *Catalog; Define, Resolve, Names, Len
//   - Build(cat *Catalog, f *File) ([]*core.Class, error)
//   - Verify(f *File, opts ...VerifyOption) (*Report, error)
//   - WithLogger(log *zap.Logger) VerifyOption
package schema
