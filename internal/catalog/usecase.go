package catalog

import "github.com/mdrakibulhaquesardar/flx-cli/pkg/config"

var useCase = mustParse("usecase", `import '../entities/{{.Snake}}_entity.dart';
import '../repositories/{{.Snake}}_repository.dart';

class Get{{.Pascal}}Usecase {
  Get{{.Pascal}}Usecase({required this.repository});

  final {{.Pascal}}Repository repository;

  Future<{{.Pascal}}Entity> call(String id) => repository.get{{.Pascal}}ById(id);
}
`)

// UseCase renders the domain use case, a callable wrapper over the
// repository interface.
func UseCase(name string, cfg config.Config) string {
	return render(useCase, newCtx(name, cfg))
}
