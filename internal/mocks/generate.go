package mocks

//go:generate mockery --name SaleLedger --srcpkg github.com/herd-lab/follow-the-herd/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name PopularityStore --srcpkg github.com/herd-lab/follow-the-herd/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name SessionStore --srcpkg github.com/herd-lab/follow-the-herd/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name API --srcpkg github.com/herd-lab/follow-the-herd/internal/catalog --output ./catalog --outpkg catalogmocks --with-expecter
